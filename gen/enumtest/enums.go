// Package enumtest holds committed generator output exercised by runtime
// tests: an unsigned enum with implicit numbering resuming after an
// explicit value, and a signed enum with aliased values.
package enumtest

//go:generate go run github.com/pablor21/cenum/cmd/cenum -pkg .

/*cenum:
derive(text, json)
// Variant is the classic open-enum shape: implicit numbering resumes
// after an explicit value.
pub enum Variant : uint32 {
	A,
	B,
	C = 5,
	D,
}
*/

/*cenum:
derive(text)
pub enum Errno : int16 {
	ENone = 0,
	EPerm = 1,
	EAgain = 11,
	EWouldBlock = 11,
}
*/
