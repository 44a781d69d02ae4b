// Package account mounts the authentication endpoints: register, login,
// logout, current user, password reset, password change and profile update.
//
// Handlers are thin. They bind the JSON body, call svc/auth and hand the
// session token to a session.Transport. Errors from svc/auth are translated
// to HTTP in one place, ErrorMapper.
//
//	accounts := account.NewService(authSvc, transport, account.WithLogger(log))
//	r.Route("/api", func(api chi.Router) {
//		accounts.Routes(api)
//	})
package account
