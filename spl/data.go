package spl

type (
	// Report describes an image as found, including copies that failed to
	// decode.
	Report struct {
		Size           int           `json:"size"`
		Primary        CopyReport    `json:"primary"`
		Backup         CopyReport    `json:"backup"`
		Identical      bool          `json:"identical"`
		Selected       string        `json:"selected"`
		PrimaryInvalid bool          `json:"primary_invalid"`
		Header         *HeaderReport `json:"header,omitempty"`
		PayloadValid   bool          `json:"payload_valid"`
		Error          string        `json:"error,omitempty"`
	}
	CopyReport struct {
		Source string        `json:"source"`
		Offset int           `json:"offset"`
		Valid  bool          `json:"valid"`
		Error  string        `json:"error,omitempty"`
		Header *HeaderReport `json:"header,omitempty"`
	}
	// HeaderReport renders header words the way firmware people read them.
	HeaderReport struct {
		Magic        string `json:"magic"`
		Version      string `json:"version"`
		HeaderSize   uint32 `json:"header_size"`
		PayloadSize  uint32 `json:"payload_size"`
		LoadAddress  string `json:"load_address"`
		EntryAddress string `json:"entry_address"`
		Checksum     string `json:"checksum"`
		PayloadCRC   string `json:"payload_crc"`
	}
)

const (
	SelectedNone = "none"
	// HexDumpWidth is the number of bytes per HexDump row.
	HexDumpWidth = 16
)
