// Package uniprop maps symbolic Unicode general-category and script
// names to the engine's property-escape syntax (\p{...}).
// Invariants:
//   - Abbreviations follow the engine's accepted one- and two-letter
//     general-category names; the long Unicode names are not emitted.
//   - The package only renders escapes; it never inspects or validates
//     pattern syntax.
package uniprop
