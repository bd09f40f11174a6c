//go:build windows

package glob

import "golang.org/x/sys/windows"

const isWindowsPlatform = true

var forceWindowsStyle = false

// platformCaseSensitive queries the system drive's actual volume flags via
// golang.org/x/sys/windows rather than assuming Windows is always
// case-insensitive: recent Windows builds can opt individual volumes (and
// WSL-backed directories) into case-sensitive search.
func platformCaseSensitive() bool {
	root, err := windows.UTF16PtrFromString(`C:\`)
	if err != nil {
		return false
	}

	var volumeNameBuf [windows.MAX_PATH + 1]uint16
	var fsNameBuf [windows.MAX_PATH + 1]uint16
	var serial, maxComponent, fsFlags uint32

	err = windows.GetVolumeInformation(
		root,
		&volumeNameBuf[0], uint32(len(volumeNameBuf)),
		&serial,
		&maxComponent,
		&fsFlags,
		&fsNameBuf[0], uint32(len(fsNameBuf)),
	)
	if err != nil {
		return false
	}

	return fsFlags&windows.FILE_CASE_SENSITIVE_SEARCH != 0
}
