// Package api defines the HTTP request and response types shared by all handlers.
package api

// RegisterRequest is the body of POST /auth/register.
// Password accepts 6 to 36 alphanumeric characters only.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,alphanum,min=6,max=36"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateServiceRequest is the body of POST /services.
// Price is a pointer so that a zero price passes the required check.
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Price       *int    `json:"price" binding:"required"`
	ShowTime    *int    `json:"showTime"`
	IsPublic    *bool   `json:"isPublic"`
	ShopID      *string `json:"shopId" binding:"omitempty,uuid4"`
}

// UpdateServiceRequest is the body of PUT /services/:id.
// Every field is optional; only fields present in the JSON are patched.
type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	ShowTime    *int    `json:"showTime"`
	Order       *int    `json:"order"`
	IsRemove    *bool   `json:"isRemove"`
	IsPublic    *bool   `json:"isPublic"`
	ShopID      *string `json:"shopId" binding:"omitempty,uuid4"`
}
