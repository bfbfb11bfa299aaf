package commands

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shadigest/internal/digest"
)

var errSelftest = errors.New("selftest failed")

type vector struct {
	name  string
	input []byte
	want  string
}

// knownAnswers are the NIST SHA-256 examples plus the padding edge lengths.
func knownAnswers() []vector {
	return []vector{
		{"empty", nil, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"448-bit",
			[]byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			"million-a",
			bytes.Repeat([]byte("a"), 1_000_000),
			"cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		},
		{"55-byte", patterned(55), "463eb28e72f82e0a96c0a4cc53690c571281131f672aa229e0d45ae59b598b59"},
		{"56-byte", patterned(56), "da2ae4d6b36748f2a318f23e7ab1dfdf45acdc9d049bd80e59de82a60895f562"},
		{"64-byte", patterned(64), "fdeab9acf3710362bd2658cdc9a29e8f9c757fcf9811603a8c447cd1d9151108"},
		{"119-byte", patterned(119), "da18797ed7c3a777f0847f429724a2d8cd5138e6ed2895c3fa1a6d39d18f7ec6"},
	}
}

func patterned(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the digest engine against known-answer vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, v := range knownAnswers() {
				got := digest.Sum(v.input).String()
				status := "PASS"
				if got != v.want {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "%s %-10s %s\n", status, v.name, got)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d vector(s)", errSelftest, failed)
			}
			return nil
		},
	}
}
