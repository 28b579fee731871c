// Package trampoline runs self-recursive computations without growing the
// call stack.
//
// A recursive function is rewritten to return a Step instead of calling
// itself: Done carries the final value, Continue carries a thunk that
// produces the next Step. Run drives the chain in a loop.
//
//	func count(n, acc int) trampoline.Step[int] {
//	    if n == 0 {
//	        return trampoline.Done(acc)
//	    }
//	    return trampoline.Continue(func() trampoline.Step[int] {
//	        return count(n-1, acc+1)
//	    })
//	}
//
//	total := trampoline.Run(func() trampoline.Step[int] { return count(1_000_000, 0) })
package trampoline
