package testutil

import "os"

// Setenv sets an environment variable until the end of the test, and returns
// the value.
func Setenv(c Cleanuper, name, value string) string {
	SaveEnv(c, name)
	os.Setenv(name, value)
	return value
}

// Unsetenv removes an environment variable until the end of the test.
func Unsetenv(c Cleanuper, name string) {
	SaveEnv(c, name)
	os.Unsetenv(name)
}

// SaveEnv arranges for an environment variable to get back its current state,
// set or unset, when the test ends.
func SaveEnv(c Cleanuper, name string) {
	if old, ok := os.LookupEnv(name); ok {
		c.Cleanup(func() { os.Setenv(name, old) })
		return
	}
	c.Cleanup(func() { os.Unsetenv(name) })
}
