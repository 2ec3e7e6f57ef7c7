package constants

const (
	Version        = `0.1.0`
	AppName        = `easynote`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.easynote/`
	DataDir        = `data`
	EnvPrefix      = `EASYNOTE`

	// StorageKey names the single slot that holds the serialized collection.
	StorageKey = `notes`

	PlaceholderTitle = `New Note`
	MaxTags          = 3
	PreviewLimit     = 100

	// Terminal columns at or above which the two-pane layout is used.
	DefaultBreakpoint = 100
	DefaultSplit      = 50
	MinSplit          = 20
	MaxSplit          = 80

	DefaultDateFormat = `Jan 2, 2006 3:04 PM`

	DeleteConfirmation = `Are you sure? This action cannot be undone. This will permanently delete your note.`
	EmptySelection     = `Select a note or create a new one`
)
