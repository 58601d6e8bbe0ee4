package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler       *UserHandler
	ProductionHandler *ProductionHandler
	AdminHandler      *AdminHandler
	HomeHandler       *HomeHandler
}
