package contextkeys

// contextKey is unexported to avoid collisions with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle
// (connection pool or test transaction) is stored.
const DBContextKey = contextKey("db")
