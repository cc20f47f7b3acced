package command

// Prefix is the marker every registrable command name starts with.
// The remainder of the name is what the operator types.
const Prefix = "CMD"

// Handler runs a command with the raw tokens that followed its name.
// Handlers parse their own arguments; a returned error or a panic is reported
// in the console and never reaches the host.
type Handler func(args []string) error

// Kind distinguishes free functions from methods bound to a receiver.
type Kind int

const (
	KindFunc Kind = iota
	KindMethod
)

// Tag marks a symbol as a console command
type Tag struct {
	Description string
	Hidden      bool
}

// Symbol is one exported callable of a host package, declared for discovery.
type Symbol struct {
	Name    string
	Kind    Kind
	Tag     *Tag
	Params  []string
	Handler Handler
}

// Module is the set of symbols one host package contributes.
type Module []Symbol

// Func declares a tagged free function. name must carry Prefix.
func Func(name, description string, h Handler, params ...string) Symbol {
	return Symbol{
		Name:    name,
		Kind:    KindFunc,
		Tag:     &Tag{Description: description},
		Params:  params,
		Handler: h,
	}
}

// HiddenFunc declares a tagged free function that list commands skip.
func HiddenFunc(name, description string, h Handler, params ...string) Symbol {
	s := Func(name, description, h, params...)
	s.Tag.Hidden = true
	return s
}

// Descriptor is a discovered, invocable command
type Descriptor struct {
	Name        string // stripped of Prefix
	Description string
	Hidden      bool
	Params      []string
	Handler     Handler
}

// discoverable reports whether s qualifies as a console command
func discoverable(s Symbol) bool {
	if s.Kind != KindFunc || s.Tag == nil || s.Handler == nil {
		return false
	}
	return len(s.Name) > len(Prefix) && s.Name[:len(Prefix)] == Prefix
}
