package actor

import (
	"github.com/bidbinh/vnss-tms-sub009/internal/entities"
)

func ToDomain(a *ActorDB) *entities.Actor {
	if a == nil {
		return nil
	}

	return &entities.Actor{
		ID:           a.ID,
		Type:         entities.ActorType(a.Type),
		Status:       entities.ActorStatusType(a.Status),
		Name:         a.Name,
		Code:         a.Code,
		Email:        a.Email,
		Phone:        a.Phone,
		Address:      a.Address,
		City:         a.City,
		Country:      a.Country,
		TaxCode:      a.TaxCode,
		IDNumber:     a.IDNumber,
		DateOfBirth:  a.DateOfBirth,
		Gender:       a.Gender,
		BusinessType: a.BusinessType,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func ToDomainList(actorsDB []ActorDB) []entities.Actor {
	if len(actorsDB) == 0 {
		return []entities.Actor{}
	}

	result := make([]entities.Actor, len(actorsDB))
	for i, actorDB := range actorsDB {
		result[i] = *ToDomain(&actorDB)
	}
	return result
}

// FromDomainModify flattens the set fields into column values for the
// statement builder.
func FromDomainModify(actorModify *entities.ActorModify) map[string]interface{} {
	columns := make(map[string]interface{})
	if actorModify == nil {
		return columns
	}

	if actorModify.Type != nil {
		columns["type"] = actorModify.Type.String()
	}
	if actorModify.Status != nil {
		columns["status"] = actorModify.Status.String()
	}
	if actorModify.Name != nil {
		columns["name"] = *actorModify.Name
	}
	if actorModify.Code != nil {
		columns["code"] = *actorModify.Code
	}
	if actorModify.Email != nil {
		columns["email"] = *actorModify.Email
	}
	if actorModify.Phone != nil {
		columns["phone"] = *actorModify.Phone
	}
	if actorModify.Address != nil {
		columns["address"] = *actorModify.Address
	}
	if actorModify.City != nil {
		columns["city"] = *actorModify.City
	}
	if actorModify.Country != nil {
		columns["country"] = *actorModify.Country
	}
	if actorModify.TaxCode != nil {
		columns["tax_code"] = *actorModify.TaxCode
	}
	if actorModify.IDNumber != nil {
		columns["id_number"] = *actorModify.IDNumber
	}
	if actorModify.DateOfBirth != nil {
		columns["date_of_birth"] = *actorModify.DateOfBirth
	}
	if actorModify.Gender != nil {
		columns["gender"] = *actorModify.Gender
	}
	if actorModify.BusinessType != nil {
		columns["business_type"] = *actorModify.BusinessType
	}

	return columns
}
