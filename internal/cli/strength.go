package cli

import (
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

// printStrength reports an offline strength estimate for the credential.
// Digest input carries no plaintext to score, so hashed mode prints nothing.
func printStrength(credential string) {
	if hashed {
		return
	}

	estimate := zxcvbn.PasswordStrength(credential, nil)
	fmt.Printf("Strength: %d/4, crack time %s\n", estimate.Score, estimate.CrackTimeDisplay)
}
