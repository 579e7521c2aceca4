package config

// Logical module names. Library filenames decorate these per platform.
const (
	CoreModule        = "modfactory"
	MockModule        = "modfactory-mock"
	HTTPExtension     = "modfactory.extension.http"
	SocketIOExtension = "modfactory.extension.socketio"
	UnidecModule      = "modfactory-unidec"
)

// DefaultFallback is the platform used when GOOS has no list of its own.
const DefaultFallback = "windows"

// Default returns the built-in priority table.
//
// IMPORTANT: do not change the order of the entries below. The resource
// manager searches them first to last and returns the first object created,
// so mock modules win over real ones and extensions shadow the core.
func Default() *Table {
	return &Table{
		Fallback: DefaultFallback,
		Platforms: map[string]*Platform{
			"linux": {
				Name: "linux",
				Entries: []Entry{
					{Name: "libmodfactory-mock.so", Role: RoleMock},
					{Name: "libmodfactory.extension.http.so", Role: RoleExtension},
					{Name: "libmodfactory.extension.socketio.so", Role: RoleExtension},
					{Name: CoreModule, Role: RoleCore},
				},
			},
			"darwin": {
				Name: "darwin",
				Entries: []Entry{
					{Name: "libmodfactory-mock.dylib", Role: RoleMock},
					{Name: "libmodfactory.extension.http.dylib", Role: RoleExtension},
					{Name: "libmodfactory.extension.socketio.dylib", Role: RoleExtension},
					{Name: CoreModule, Role: RoleCore},
				},
			},
			"windows": {
				Name: "windows",
				Entries: []Entry{
					{Name: "modfactory-mock.dll", Role: RoleMock},
					// Names containing dots need the explicit .dll suffix.
					{Name: "modfactory.extension.http.dll", Role: RoleExtension},
					{Name: "modfactory.extension.socketio.dll", Role: RoleExtension},
					// The core module is an internal name with no suffix.
					{Name: CoreModule, Role: RoleCore},
					{Name: "modfactory-unidec.dll", Role: RoleCore},
				},
			},
		},
	}
}
