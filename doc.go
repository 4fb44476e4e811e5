// Package modec decodes semi-structured key-value documents into
// statically-typed model values.
//
// It provides:
//
// - Per-field control over required vs optional resolution (Required/Optional and friends)
// - Dot-separated key paths into nested documents ("author.name")
// - Pluggable raw-to-model transforms via Shape descriptors (see shape/ and codec/)
// - A stable error model (DecodeError with missing_key / invalid_value / invalid_document codes)
// - Pluggable byte sources under source/ (JSON, YAML, TOML)
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations under internal/.
//   - Place shape constructors under shape/, ready-made transforms under codec/, and the CLI
//     under cmd/modec.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct {
//		Name string
//		Age  int
//	}
//
//	func (u *User) DecodeFields(r *modec.Resolver) {
//		u.Name = modec.Required(r, "name", shape.String())
//		u.Age = modec.Required(r, "age", shape.Int())
//	}
//
//	u, err := modec.DecodeBytes[User](data)
package modec
