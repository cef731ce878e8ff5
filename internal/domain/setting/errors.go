package setting

import "errors"

// ErrSettingNotFound is returned when a setting does not exist
var ErrSettingNotFound = errors.New("setting not found")
