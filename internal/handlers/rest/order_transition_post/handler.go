package order_transition_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bidbinh/vnss-tms-sub009/internal/dto"
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
	"github.com/bidbinh/vnss-tms-sub009/internal/handlers/rest"
	"github.com/bidbinh/vnss-tms-sub009/internal/service/order"
	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

// Actions is the set of workflow route segments this handler serves,
// used by the router to constrain the path variable.
const Actions = "submit|assign|unassign|accept|start|pickup|deliver|complete|cancel|hold|resume"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid order id")
		return
	}

	// Transitions without parameters may be called with an empty body.
	var transitionDTO dto.OrderTransitionRequest
	err = json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		rest.WriteDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderEntity, err := h.dispatch(r, id, vars["action"], transitionDTO)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = rest.WriteJSON(w, http.StatusOK, rest.ToOrderDTO(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) dispatch(r *http.Request, id int64, action string, transitionDTO dto.OrderTransitionRequest) (*entities.Order, error) {
	ctx := r.Context()

	switch action {
	case "submit":
		return h.service.SubmitOrder(ctx, id, transitionDTO.ActorID)

	case "assign":
		if transitionDTO.DriverActorID == nil {
			return nil, order.ErrMissingRequiredFields
		}
		assignment := entities.OrderAssignment{
			DriverActorID: *transitionDTO.DriverActorID,
			VehicleID:     transitionDTO.VehicleID,
			ActorID:       transitionDTO.ActorID,
		}
		if transitionDTO.SegmentNumber != nil {
			assignment.SegmentNumber = *transitionDTO.SegmentNumber
		}
		if transitionDTO.SegmentType != nil {
			assignment.SegmentType = *transitionDTO.SegmentType
		}
		return h.service.AssignOrder(ctx, id, assignment)

	case "unassign":
		return h.service.UnassignOrder(ctx, id, transitionDTO.ActorID)

	case "accept", "start", "pickup", "deliver":
		if transitionDTO.DriverActorID == nil {
			return nil, order.ErrMissingRequiredFields
		}
		driverActorID := *transitionDTO.DriverActorID
		switch action {
		case "accept":
			return h.service.AcceptOrder(ctx, id, driverActorID)
		case "start":
			return h.service.StartTransit(ctx, id, driverActorID)
		case "pickup":
			return h.service.RecordPickup(ctx, id, driverActorID)
		default:
			return h.service.DeliverOrder(ctx, id, driverActorID)
		}

	case "complete":
		return h.service.CompleteOrder(ctx, id, transitionDTO.ActorID)

	case "cancel":
		var reason string
		if transitionDTO.Reason != nil {
			reason = *transitionDTO.Reason
		}
		return h.service.CancelOrder(ctx, id, reason, transitionDTO.ActorID)

	case "hold":
		return h.service.HoldOrder(ctx, id, transitionDTO.ActorID)

	case "resume":
		return h.service.ResumeOrder(ctx, id, transitionDTO.ActorID)

	default:
		return nil, order.ErrInvalidStatusTransition
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidActorID),
		errors.Is(err, order.ErrMissingRequiredFields),
		errors.Is(err, order.ErrOrderIncomplete),
		errors.Is(err, order.ErrReasonRequired):
		rest.WriteDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		rest.WriteDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrStateConflict),
		errors.Is(err, order.ErrNotOnHold),
		errors.Is(err, order.ErrDriverNotActive),
		errors.Is(err, order.ErrNoAssignableRelationship),
		errors.Is(err, order.ErrNotAssignedDriver),
		errors.Is(err, order.ErrDriverNotPaid):
		rest.WriteDetail(w, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidStatusTransition):
		rest.WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		rest.WriteDetail(w, http.StatusInternalServerError, "internal server error")
	}
}
