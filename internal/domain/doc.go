// Package domain contains the value types shared by the robot illustrations.
//
// The domain is transport- and presentation-agnostic: it does not depend on net/http,
// Kafka, the terminal or the filesystem. Capabilities live in ports and their variants
// live in infra.
package domain
