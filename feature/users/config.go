package users

// Config holds the user store bootstrap settings.
type Config struct {
	// SeedAdmin creates the admin account at start-up when it does not exist.
	SeedAdmin bool `mapstructure:"seed_admin" default:"true"`
	// AdminUsername is the seeded admin's username.
	AdminUsername string `mapstructure:"admin_username" default:"admin"`
	// AdminPassword is the seeded admin's initial password.
	AdminPassword string `mapstructure:"admin_password" default:"admin123"`
}
