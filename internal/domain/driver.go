package domain

import "time"

// Driver represents a delivery driver registered in the directory.
type Driver struct {
	ID        int64
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
}

// DriverWithAreas is a driver together with the area keys it covers, sorted alphabetically.
type DriverWithAreas struct {
	Driver
	Areas []string
}
