// Package contract verifies that an error type declares the canonical set of
// four constructors and that each one propagates its message and cause.
//
// A contract-compliant error type E provides:
//
//	func() E                 // no message, no cause
//	func(string) E           // message only
//	func(error) E            // cause only
//	func(string, error) E    // message and cause
//
// Go has no constructor lookup, so the constructors are handed to the verifier
// in a Constructors value and resolved by reflection against the exact
// parameter list each Role requires. The declared result may be E itself or an
// interface E implements (such as error); the dynamic type of the value each
// constructor returns must be exactly E.
//
// # Probes
//
// Each constructor is invoked with fixed arguments and the constructed error is
// checked afterwards:
//
//   - New: the message is empty.
//   - NewWithMessage("abc"): the message is "abc".
//   - NewWithCause(cause): the message mentions IllegalArgumentError and
//     Unwrap returns the very same cause.
//   - NewWithMessageAndCause("abc", cause): the message is "abc" and Unwrap
//     returns an IllegalArgumentError whose message is "def".
//
// The message of an error is its Message() result when it has one (the
// convention of github.com/jmgilman/go/errors) and Error() otherwise.
//
// # Usage
//
//	func TestBuildError(t *testing.T) {
//	    contract.AssertErrorType[*BuildError](t, contract.Constructors{
//	        New:                    NewBuildError,
//	        NewWithMessage:         NewBuildErrorWithMessage,
//	        NewWithCause:           NewBuildErrorWithCause,
//	        NewWithMessageAndCause: NewBuildErrorWithMessageAndCause,
//	    })
//	}
//
// Every role is checked independently and each failing role is reported once.
// Verify is the pure form and returns the violations joined into one error.
package contract
