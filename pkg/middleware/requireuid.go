package middleware


import (
"net/http"
"github.com/labstack/echo/v4"
)


// RequireUID is an optional middleware. When enabled=true, it requires a user
// id supplied by an authenticating frontend or gateway. If it cannot find one,
// it returns 401. When enabled=false, it simply passes through (use DevLogin
// instead).
func RequireUID(enabled bool) echo.MiddlewareFunc {
return func(next echo.HandlerFunc) echo.HandlerFunc {
return func(c echo.Context) error {
if !enabled {
return next(c) // bypass in development
}
uid := c.Request().Header.Get("X-User-Id")
if uid == "" {
if ck, err := c.Cookie("ETFLOW_UID"); err == nil { uid = ck.Value }
}
if uid == "" {
return c.JSON(http.StatusUnauthorized, map[string]string{"error":"auth required: missing UID"})
}
c.Set("uid", uid)
return next(c)
}
}
}
