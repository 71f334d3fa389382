package services

// Customer credentials share the bcrypt setup used for admins.

// HashCustomerPassword hashes a storefront account password
func HashCustomerPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

// VerifyCustomerPassword verifies a storefront account password
func VerifyCustomerPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}
