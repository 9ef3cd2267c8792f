package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountCreate - вложенные учетные данные при создании профиля.
// Пароль наружу не сериализуется никогда.
type AccountCreate struct {
	Email    string `json:"email" validate:"required,email,max=50"`
	Phone    string `json:"phone" validate:"required,e164,max=50"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// AccountUpdate - частичное обновление учетных данных профиля
type AccountUpdate struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=50"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,e164,max=50"`
}
