package internal

import (
	"lifedash/internal/controllers"
	"lifedash/internal/providers"
	"net/http"
)

func InitRoutes(visibilityController *controllers.VisibilityController, dataController *controllers.DataController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/visibility", http.HandlerFunc(visibilityController.GetVisibility))
	routers.Post("/visibility/toggle", http.HandlerFunc(visibilityController.Toggle))
	routers.Post("/visibility/set", http.HandlerFunc(visibilityController.SetVisibility))
	routers.Post("/visibility/reset", http.HandlerFunc(visibilityController.Reset))
	routers.Get("/export", http.HandlerFunc(dataController.Export))
	routers.Post("/import", http.HandlerFunc(dataController.Import))
	routers.Post("/clear", http.HandlerFunc(dataController.Clear))
	return routers
}
