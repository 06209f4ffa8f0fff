package user

import "storefront/internal/entities"

func ToDomain(db UserDB) *entities.User {
	return &entities.User{
		ID:           db.ID,
		Name:         db.Name,
		Email:        db.Email,
		PasswordHash: db.PasswordHash,
		Phone:        db.Phone,
		Role:         entities.RoleType(db.Role),
		CreatedAt:    db.CreatedAt,
	}
}

func AddressToDomain(db AddressDB) entities.Address {
	return entities.Address{
		ID:         db.ID,
		UserID:     db.UserID,
		FullName:   db.FullName,
		Phone:      db.Phone,
		Line:       db.Line,
		City:       db.City,
		State:      db.State,
		PostalCode: db.PostalCode,
	}
}

func OTPToDomain(db OTPCodeDB) *entities.OTPCode {
	return &entities.OTPCode{
		Email:     db.Email,
		Code:      db.Code,
		ExpiresAt: db.ExpiresAt,
		Verified:  db.Verified,
	}
}
