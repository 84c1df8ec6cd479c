//go:build linux

package ibus

import "github.com/godbus/dbus/v5"

// ibusText is the wire form of IBusText, the serializable text value
// every IBus engine signal carries. The leading name field and the
// attachment map are part of the IBusSerializable framing.
type ibusText struct {
	Name        string
	Attachments map[string]dbus.Variant
	Text        string
	AttrList    ibusAttrList
}

type ibusAttrList struct {
	Name        string
	Attachments map[string]dbus.Variant
	Attributes  []dbus.Variant
}

func newIBusText(text string) ibusText {
	return ibusText{
		Name:        "IBusText",
		Attachments: map[string]dbus.Variant{},
		Text:        text,
		AttrList: ibusAttrList{
			Name:        "IBusAttrList",
			Attachments: map[string]dbus.Variant{},
			Attributes:  []dbus.Variant{},
		},
	}
}
