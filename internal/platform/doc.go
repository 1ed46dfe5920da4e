package platform

// Package platform contains OS integration glue: filesystem helpers, the
// default data directory, and opening folders in the system file manager.
