package relationship

import (
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func ToDomain(r *RelationshipDB) *entities.Relationship {
	if r == nil {
		return nil
	}

	return &entities.Relationship{
		ID:                   r.ID,
		ActorID:              r.ActorID,
		RelatedActorID:       r.RelatedActorID,
		Type:                 r.Type,
		Role:                 r.Role,
		Status:               entities.RelationshipStatusType(r.Status),
		Message:              r.Message,
		Permissions:          r.Permissions,
		PaymentTerms:         r.PaymentTerms,
		TotalOrdersCompleted: r.TotalOrdersCompleted,
		TotalAmountPaid:      r.TotalAmountPaid,
		TotalAmountPending:   r.TotalAmountPending,
		Rating:               r.Rating,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func ToDomainList(relationshipsDB []RelationshipDB) []entities.Relationship {
	if len(relationshipsDB) == 0 {
		return []entities.Relationship{}
	}

	result := make([]entities.Relationship, len(relationshipsDB))
	for i, relationshipDB := range relationshipsDB {
		result[i] = *ToDomain(&relationshipDB)
	}
	return result
}

// FromDomainModify flattens the set fields into column values for the
// statement builder.
func FromDomainModify(relationshipModify *entities.RelationshipModify) map[string]interface{} {
	columns := make(map[string]interface{})
	if relationshipModify == nil {
		return columns
	}

	if relationshipModify.ActorID != nil {
		columns["actor_id"] = *relationshipModify.ActorID
	}
	if relationshipModify.RelatedActorID != nil {
		columns["related_actor_id"] = *relationshipModify.RelatedActorID
	}
	if relationshipModify.Type != nil {
		columns["type"] = *relationshipModify.Type
	}
	if relationshipModify.Role != nil {
		columns["role"] = *relationshipModify.Role
	}
	if relationshipModify.Status != nil {
		columns["status"] = relationshipModify.Status.String()
	}
	if relationshipModify.Message != nil {
		columns["message"] = *relationshipModify.Message
	}
	if relationshipModify.Permissions != nil {
		columns["permissions"] = *relationshipModify.Permissions
	}
	if relationshipModify.PaymentTerms != nil {
		columns["payment_terms"] = *relationshipModify.PaymentTerms
	}
	if relationshipModify.Rating != nil {
		columns["rating"] = *relationshipModify.Rating
	}

	return columns
}
