// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides the capability and effect-tracking core of a small
// functional runtime in Go: algebraic capability interfaces with stated
// laws, a suspended effectful-computation type, and region-scoped mutable
// references whose handles cannot outlive their region.
//
// The core type [Eff] represents a computation whose effects have not yet
// been performed. Constructing an Eff performs nothing; a runner ([Handle],
// [RunTrace], [RunRegion], [PureRegion]) drives it and discharges its
// effects. Running the same Eff twice repeats all effects - results are
// never memoized.
//
// # Design Philosophy
//
// eff provides:
//   - Minimal but complete monadic sequencing over a CPS core
//   - F-bounded polymorphism for compile-time dispatch and devirtualization
//   - Defunctionalized evaluation with iterative, stack-safe loops
//   - Capability interfaces whose laws live in the property test suite,
//     not in runtime checks
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return], [Pure]: Lift a pure value into a computation
//   - [Bind]: Sequence two computations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result
//   - [Then]: Sequence, discarding the first result
//   - [Ap], [LiftA2]: Applicative forms, defined from Bind and Return so
//     their sequencing is exactly the monad's
//
// Execution:
//
//   - [Suspend]: Create a continuation from a CPS function
//   - [Run]: Execute a continuation to obtain the result
//   - [RunWith]: Execute with a custom final handler
//
// # Loop Combinators
//
// Deterministic, strict, left-to-right; construction is lazy per iteration:
//
//   - [ForE]: body(i) for i in [lo, hi), ascending
//   - [ForeachE]: body once per slice element, in order
//   - [WhileE]: alternate condition and body until the condition fails
//   - [UntilE]: re-run the condition until it yields true
//   - [ExprForE], [ExprForeachE], [ExprWhileE], [ExprUntilE]: trampolined
//     counterparts with constant stack for deep loops
//
// # Effects
//
// Effects are defined as types implementing the F-bounded [Op] constraint,
// and handlers interpret them via the F-bounded [Handler] interface.
// Handler dispatch returns (resumeValue, true) to continue the computation,
// or (finalResult, false) to short-circuit.
//
//   - [Op]: F-bounded effect operation interface
//   - [Operation]: Runtime type for effect operations
//   - [Resumed]: Runtime type for resumption values
//   - [Handler]: F-bounded effect interpreter interface
//   - [Perform]: Trigger an effect operation
//   - [Handle]: Run a computation with an F-bounded effect handler
//   - [HandleFunc]: Create a handler from a dispatch function
//
// The set of operation families a computation performs is its effect row:
// the runner stack must discharge every family before a plain value comes
// out, and discharging is visible in the types ([RunRegion] removes the
// region family, [RunTrace] the trace family, [PureRegion] everything).
//
// # Region-Scoped References
//
// Mutable state lives in [Ref] cells branded with a [Region]:
//
//   - [NewRef], [ReadRef], [WriteRef], [ModifyRef]: Effect operations on cells
//   - [ReadRefBind], [WriteRefThen]: Fused convenience constructors
//   - [RunRegion]: Mint a fresh region, run a region-polymorphic scoped
//     computation, and discharge exactly that region's operations; all
//     other effects forward to the enclosing handler
//   - [PureRegion]: Like RunRegion, but discharges all the way to a plain
//     value; scoped must use no effects beyond its own region
//
// A Region identity is generative: minted per run, never equal across runs,
// and closed when the run completes. A handle observed outside its minting
// region panics - Go cannot reject the escape at compile time, so the brand
// check is the enforcement point.
//
// Nil completion convention: runners treat a nil [Resumed] value as
// "completed with the zero value". Computations whose final result type is
// a pointer or interface cannot use nil as a meaningful result value.
//
// # Diagnostic Output
//
// Console output is an effect, not an ambient global:
//
//   - [Trace]: Effect operation carrying one message
//   - [TraceLine], [TraceMsg]: Constructors (plain and fused)
//   - [RunTrace], [CollectTrace]: Runners with an injected [Sink]
//   - [WriterSink], [CollectSink], [ZapSink]: Sink adapters
//
// Combined runners discharge several families at once:
//
//   - [RunRegionTrace], [RunRegionTraceExpr]: region + trace in one handler
//
// # Capability Interfaces
//
// Pure, stateless contracts with laws checked by the property suite:
//
//   - [Compose], [ComposeFlipped], [Identity]: Function composition forms a
//     category (associativity, two-sided identity)
//   - [Eq], [Ord], [Ordering]: Equality and total ordering; [Less],
//     [Greater], [LessEq], [GreaterEq] derive from Compare alone;
//     [CompareSlices] is lexicographic with shorter-before-longer ties
//   - [Semiring], [Ring], [ModuloSemiring], [DivisionRing], [Field]:
//     Numeric tower; [Negate] derives from Ring
//   - [Bits], [BoolLike], [Semigroup]: Host-semantics bitwise/boolean
//     operations and associative append
//   - [Int], [Number], [Str], [Bool], [Unit]: Primitive backend wrappers
//     carrying the instances
//   - [MapSlice], [PureSlice], [BindSlice], [ApSlice]: Slices as the
//     ambiguous computation
//
// # Defunctionalized Evaluation
//
// Defunctionalization (Reynolds 1972) enables allocation-free evaluation
// loops for continuation frames. The [Expr] type carries explicit frame
// data, unlike the closure-based [Cont] which tracks the answer type R at
// compile time.
//
// [Frame] is the marker interface for all frame types:
//
//   - [ReturnFrame]: Computation complete
//   - [BindFrame]: Monadic sequencing
//   - [MapFrame]: Functor transformation
//   - [ThenFrame]: Sequencing with discard
//   - [EffectFrame]: Suspended effect operation
//
// Constructors and evaluators:
//
//   - [ExprReturn], [ExprBind], [ExprMap], [ExprThen], [ExprPerform],
//     [ExprSuspend], [ChainFrames]
//   - [RunPure]: Iteratively evaluate a pure computation (panics on effects)
//   - [HandleExpr]: Evaluate with an F-bounded effect handler
//
// # Bridge: Reify / Reflect
//
// The two representations convert at runtime following Filinski (1994):
//
//   - [Reify]: Cont[Resumed, A] → Expr[A] (closures become frames)
//   - [Reflect]: Expr[A] → Cont[Resumed, A] (frames become closures)
//
// Conversion is lazy for effectful computations; round-trip preserves
// semantics.
//
// # Example
//
//	sum := eff.PureRegion(func(r *eff.Region) eff.Eff[int] {
//		return eff.Bind(eff.NewRef(r, 0), func(acc *eff.Ref[int]) eff.Eff[int] {
//			loop := eff.ForE(0, 5, func(i int) eff.Eff[eff.Unit] {
//				return eff.Then(eff.ModifyRef(acc, func(n int) int { return n + i }), eff.Pure(eff.Unit{}))
//			})
//			return eff.Then(loop, eff.ReadRef(acc))
//		})
//	})
//	// sum == 10
package eff
