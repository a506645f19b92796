package checker

// Samples returns the fixed demonstration programs fed to the analyzer by
// the samples command, one report each. The first is well formed; the rest
// each trip a different check.
func Samples() []string {
	return []string{
		"Var i,j:integer;Begin i:=0;j:=1;End",                         // Correct
		"Vari:integer;",                                               // Missing space after var
		"Var 9i:integer;",                                             // Starts with digit
		"Var i j:integer;",                                            // Missing comma
		"Var i#:integer;",                                             // Illegal character
		"Var i:integer",                                               // Missing semicolon
		"Var i:integer;i:bool;",                                       // Repeated definition
		"Var i:integer;Begin i=0;End",                                 // Missing :=
		"Var i:integer;Begin j:=0;End",                                // Undefined variable
		"Var i,J1:integer;Begin i:=0 J1:=50;End",                      // Missing semicolon in realization
		"Var i:integer;Begin While (i<10) Do i:=1; End; End",          // Correct while loop
		"Var a,b:bool;Begin If (a==b) Then a:=1; Else b:=0; End; End", // Correct if/else
		"Var i:integer;Begin While (i>0) Do i:=0;",                    // While left unclosed
		"Var i:integer;Begin Else i:=0; End",                          // Else without if
	}
}
