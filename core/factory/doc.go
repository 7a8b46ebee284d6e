// Package factory provides a small generic registry mapping a type name to a
// constructor. Variants are registered once, usually from an init function,
// and instantiated on demand from a ModuleConfig. Factories that need settings
// decode the raw map into a typed struct with Decode.
//
// Example usage:
//
//	reg := factory.NewRegistry[furniture.Furniture]()
//	_ = reg.Register("sofa", func(map[string]any) (furniture.Furniture, error) {
//	    return furniture.Sofa{}, nil
//	})
//	f, err := reg.Create(factory.ModuleConfig{Type: "sofa"})
package factory
