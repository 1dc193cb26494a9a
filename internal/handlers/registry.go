package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	Base           *BaseHandler
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	VacancyHandler *VacancyHandler
}
