//go:build linux

package ibus

import (
	"os"
	"path/filepath"
)

// componentFile is where IBus discovers third-party engines.
const componentFile = "hipkey.xml"

func componentDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "ibus", "component"), nil
}

// InstallComponent writes the engine descriptor so ibus-daemon can
// launch hipkey on demand. Run `ibus restart` afterwards.
func InstallComponent() error {
	dir, err := componentDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	binPath, err := os.Executable()
	if err != nil {
		binPath = "/usr/local/bin/hipkey-ibus"
	}

	componentXML := `<?xml version="1.0" encoding="utf-8"?>
<component>
    <name>com.hipkey.ibus</name>
    <description>Hip-Key Vietnamese Input Method</description>
    <exec>` + binPath + `</exec>
    <version>0.1.0</version>
    <author>Hip-Key</author>
    <license>MIT</license>
    <homepage>https://github.com/hieple7985/hip-key</homepage>
    <textdomain>hipkey</textdomain>
    <engines>
        <engine>
            <name>` + HipkeyEngineName + `</name>
            <language>vi</language>
            <license>MIT</license>
            <author>Hip-Key</author>
            <icon>hipkey</icon>
            <layout>us</layout>
            <longname>Hip-Key Vietnamese</longname>
            <description>Vietnamese input with Telex and VNI</description>
            <rank>99</rank>
            <symbol>V</symbol>
        </engine>
    </engines>
</component>`

	return os.WriteFile(filepath.Join(dir, componentFile), []byte(componentXML), 0o644)
}

// UninstallComponent removes the engine descriptor.
func UninstallComponent() error {
	dir, err := componentDir()
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(dir, componentFile))
}
