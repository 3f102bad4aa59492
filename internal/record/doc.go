// Package record defines the employee record value object.
//
// A Record is pure data. The package imports nothing internal; every
// other package in the module builds on it.
//
// The serialized form uses the field names of the on-disk roster file:
//
//	{"employee_id": 1, "name": "Alice", "position": "Engineer", "salary": 90000}
//
// Text fields are NFC-normalized on construction so that visually
// identical names compare and persist identically.
package record
