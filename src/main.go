package main

import "QuickTech-Backend/src/cmd"

// @title        QuickTech API
// @version      1.0
// @description  Form intake and admin review for the QuickTech marketing site.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cmd.Execute()
}
