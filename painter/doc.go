// Package painter draws horizontal lines in ASCII art, styled by a mode
// expression built from two categories:
//
//	LineStyle: Dotted  ".........."   Dashed "----------"   Solid "__________"
//	EndStyle:  NoEnds  " __________"  Arrows "<__________>" Circles "o__________o"
//
// Usage:
//
//	p := painter.New()
//	_ = p.DrawLine(os.Stdout, mode.Must(mode.Combine(painter.Dashed, painter.Arrows))) // <---------->
//	_ = p.DrawLine(os.Stdout, painter.Dashed)                                          //  ----------
//	_ = p.DrawLine(os.Stdout, mode.Empty)                                              //  __________
//
// Each operation checks its expression through a mode.Contract before any
// glyph is chosen. Two line styles, or a category other than LineStyle and
// EndStyle, make it return an error wrapping mode.ErrSpecification. It never
// draws a guess.
package painter
