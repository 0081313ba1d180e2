package config

// AdminConfig guards the admin fixtures endpoint.
type AdminConfig struct {
	Token string
	// UserIDs, when non-empty, restricts access to these identity-provider user IDs.
	UserIDs []string
}

func loadAdmin() AdminConfig {
	return AdminConfig{
		Token:   envOrDefault(envAdminToken, ""),
		UserIDs: listEnvOrDefault(envAdminUserIDs, nil),
	}
}
