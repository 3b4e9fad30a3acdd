package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. AdminToken guards the admin surface;
// requests without a matching X-Admin-Token header are rejected.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AdminToken is the shared secret for admin endpoints. An empty token
	// disables the admin surface entirely.
	AdminToken string `env:"ADMIN_TOKEN"`
}
