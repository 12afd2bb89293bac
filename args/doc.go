// Package args holds the structured arguments of commands with many
// optional parts (SET, SORT, GEORADIUS, RESTORE ...). Values are plain
// structs: the zero value of a field means "not given". Every type flattens
// itself into command arguments for tracing.
package args
