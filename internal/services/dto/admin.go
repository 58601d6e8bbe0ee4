package dto

// SuspendUserRequest задаёт окно приостановки аккаунта.
// Даты в формате YYYY-MM-DD, from < to.
type SuspendUserRequest struct {
	From string `json:"from" binding:"required,datetime=2006-01-02"`
	To   string `json:"to" binding:"required,datetime=2006-01-02"`
}

// ChangePlanRequest — смена тарифа пользователя администратором
type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required" validate:"is-plan"`
}
