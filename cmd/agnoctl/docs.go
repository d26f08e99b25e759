package main

// General API documentation for swaggo. Run `swag init` to regenerate docs.
//
// @title           agnoctl status API
// @version         1.0
// @description     Health endpoints for the local Agno stack status daemon.
//
// @contact.name   agnoctl maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
