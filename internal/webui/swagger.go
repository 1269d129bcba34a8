package webui

//go:generate swag init -g internal/webui/swagger.go -o internal/webui/docs --outputTypes go

// @title Compliscan API
// @version 0.1
// @description Runs a compliance scan through the configured scanning service and returns the rendered report tree.
// @contact.name Compliscan Maintainers
// @contact.url https://github.com/raysh454/compliscan
// @BasePath /
