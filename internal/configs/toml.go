package configs

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadTOML loads a TOML file into a struct, rejecting keys the struct
// does not declare.
func LoadTOML(filePath string, data interface{}) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unrecognized key %q", undecoded[0].String())
	}
	return nil
}
