// Package common defines shared sentinel errors used across the client
// layers of daybook. Callers should use errors.Is to match these values.
package common

import "errors"

var ErrorNotFound = errors.New("not found")
