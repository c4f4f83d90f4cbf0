// Package namegen derives a migration name from the statements a diff
// produced (spec.md §4.6), grounded on
// original_source/src/name_gen.rs's generate_name/alter_table_name.
package namegen
