// @title           artbook API
// @version         1.0
// @description     Artist booking marketplace: catalog, manager dashboard and artist onboarding.
// @contact.name    Artbook team
// @contact.email   support@artbook.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "artbook_backend/internal/app"

func main() {
	app.Run()
}
