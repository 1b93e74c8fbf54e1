/*
Package variables implements the variable store for lablang programs.

Variables are global: there is one store per interpreter, and every label
sees the same variables. Values are stored as raw tokens, exactly as they
appear in the source, and are typed only when read. A variable may hold
the name of another variable, in which case reading it follows the chain:

   var a b
   var b "hello"
   print a        ⟹ hello

Reading a name which is not bound is an error, as is a chain of names
which leads back to a variable already visited.

Variables are never deleted. The store is not safe for concurrent use,
which is fine as the interpreter is strictly single-threaded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variables
