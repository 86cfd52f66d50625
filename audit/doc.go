// Package audit implements the sterility scanner: a go/ast walk over the
// repository that flags numeric literals not present in the allow-list,
// string literals smuggled into strconv parse calls, and imports of
// physical-constant packages. Sterility means every number in the codebase
// traces back to the registry seed block instead of being written inline.
package audit
