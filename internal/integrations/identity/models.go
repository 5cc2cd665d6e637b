package identity

// Principal результат проверки токена: кто выполняет запрос.
// Сервисный слой никогда не выводит идентичность сам - только через этот объект.
type Principal struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// verifyTokenRequest запрос на проверку токена
type verifyTokenRequest struct {
	Token string `json:"token"`
}

// ErrorResponse модель ошибки от identity-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
