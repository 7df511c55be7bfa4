package domain

// AppTest represents one application directory under the apps directory
type AppTest struct {
	Name string // Test identifier, the directory name
	Path string // Path to the application directory
}
