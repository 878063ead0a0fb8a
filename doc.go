/*
Package diffy computes edit scripts between two sequences and
renders them as diffs.

Three algorithms are provided: MyersGreedy, MyersLinear, and
Patience. Compute runs one of them over an Input of any comparable
item type and returns a Result, a sequence of Edit values that
turns A into B. ComposeHunks groups those edits into hunks with
surrounding context, as in a unified diff.

	in := diffy.Lines("a.txt", a, "b.txt", b)
	r := diffy.Compute(diffy.Patience, in)
	hunks := diffy.ComposeHunks(r.Edits, 3)
	fmt.Print(diffy.Unified(in, hunks))

For comparing texts in tests and logs, the Test, Log, and Each
functions do all of the above in one call:

	diffy.Test(t, t.Errorf, got, want)
	diffy.Log(a, b, diffy.UseAlgorithm(diffy.MyersLinear))
	diffy.Each(t.Logf, a, b, diffy.EmitWords)

EmitColumns shows the two texts side by side instead.

Use Option values to change how it works if the default
behavior isn't what you need.
*/
package diffy
