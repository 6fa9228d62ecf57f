package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Routes registered on public skip the session gate; routes on protected
// require a resolved console session.
type Module interface {
	RegisterRoutes(public *gin.RouterGroup, protected *gin.RouterGroup)
}
