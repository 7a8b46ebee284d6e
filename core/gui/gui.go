// Package gui is the abstract factory: one platform key yields a family of
// widgets that belong together.
//
// The selector fails on unknown platforms with an error matching
// pluggable.ErrUnknownKey. There is no default platform.
package gui

import (
	"github.com/kilianp07/patterns/core/factory"
	"github.com/kilianp07/patterns/core/selector"
)

// Supported platforms.
const (
	PlatformLinux   = "linux"
	PlatformWindows = "windows"
)

// Button can be pushed.
type Button interface {
	Push() string
}

// CheckBox can be checked.
type CheckBox interface {
	Check() string
}

// Factory creates a consistent widget family for one platform.
type Factory interface {
	Platform() string
	CreateButton() Button
	CreateCheckBox() CheckBox
}

type LinuxFactory struct{}

func (LinuxFactory) Platform() string         { return PlatformLinux }
func (LinuxFactory) CreateButton() Button     { return LinuxButton{} }
func (LinuxFactory) CreateCheckBox() CheckBox { return LinuxCheckBox{} }

type WindowsFactory struct{}

func (WindowsFactory) Platform() string         { return PlatformWindows }
func (WindowsFactory) CreateButton() Button     { return WindowsButton{} }
func (WindowsFactory) CreateCheckBox() CheckBox { return WindowsCheckBox{} }

type LinuxButton struct{}

func (LinuxButton) Push() string { return "linux button pushed !" }

type LinuxCheckBox struct{}

func (LinuxCheckBox) Check() string { return "linux checkbox checked !" }

type WindowsButton struct{}

func (WindowsButton) Push() string { return "windows button pushed !" }

type WindowsCheckBox struct{}

func (WindowsCheckBox) Check() string { return "windows checkbox checked !" }

var registry = factory.NewRegistry[Factory]()

func init() {
	registry.MustRegister(PlatformLinux, func(map[string]any) (Factory, error) { return LinuxFactory{}, nil })
	registry.MustRegister(PlatformWindows, func(map[string]any) (Factory, error) { return WindowsFactory{}, nil })
}

// NewSelector returns the platform selector.
func NewSelector(opts ...selector.Option) (*selector.Selector[Factory], error) {
	return selector.New("gui", registry, opts...)
}

// Interact pushes the family's button then checks its checkbox and returns
// both messages in that order.
func Interact(f Factory) []string {
	return []string{f.CreateButton().Push(), f.CreateCheckBox().Check()}
}
