// Package usersdk is a Go client for the user management service.
//
// The client covers user registration and administration, role
// provisioning, account verification and the health probes:
//
//	client := usersdk.NewSDKClient("http://localhost:8080")
//
//	user, err := client.CreateUser(ctx, usersdk.UserRequest{
//		FirstName:   "Jane",
//		LastName:    "Doe",
//		Mobile:      "0412345678",
//		Username:    "jdoe",
//		Email:       "jane@example.com",
//		DateOfBirth: "1990-05-01",
//		Gender:      "FEMALE",
//	})
//
//	// The 6 digit code arrives by email.
//	err = client.VerifyAccount(ctx, usersdk.VerifyRequest{
//		Email: "jane@example.com",
//		Code:  "123456",
//	})
//
// Failed calls return an *APIError carrying the HTTP status, a stable error
// code (see the ErrorCode constants) and a human readable description:
//
//	var apiErr *usersdk.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == usersdk.ErrorCodeCodeExpired {
//		_ = client.ResendVerification(ctx, usersdk.ResendRequest{Email: email})
//	}
//
// The request and response types double as the wire format of the HTTP
// handlers, so they are the single source of truth for the API schema.
package usersdk
