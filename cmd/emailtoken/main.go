package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Gunvolt24/wc_paymeta/config"
	"github.com/Gunvolt24/wc_paymeta/pkg/privacy"
	"github.com/joho/godotenv"
)

// CLI: токены email для URL вида /customers/t.…/orders.
// Адреса — аргументами или построчно из stdin; -decode — обратное преобразование.
func main() {
	decode := flag.Bool("decode", false, "decode tokens back to emails")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	tokens, err := privacy.NewEmailTokens(cfg.Privacy.EmailTokenKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (set %s_PRIVACY_EMAIL_TOKEN_KEY)\n", err, config.DefaultPrefix)
		os.Exit(2)
	}

	convert := func(s string) (string, error) {
		if *decode {
			return tokens.Decrypt(s)
		}
		return tokens.Encrypt(strings.ToLower(s))
	}

	failed := false
	emit := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		out, err := convert(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s, err)
			failed = true
			return
		}
		fmt.Println(out)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			emit(arg)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			emit(sc.Text())
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if failed {
		os.Exit(1)
	}
}
