package handlers

// User-facing message constants
const (
	MsgLoginSuccess    = "Login successful"
	MsgRegisterSuccess = "Registration successful"
	MsgLogoutSuccess   = "Logout successful"

	MsgUserCreated  = "User created successfully"
	MsgUserUpdated  = "User updated successfully"
	MsgUserDeleted  = "User deleted successfully"
	MsgUserFetched  = "User fetched successfully"
	MsgUsersFetched = "Users fetched successfully"
)
