package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// Prompt asks questions and reads the answers, one per line. Once the input ends every
// method returns io.EOF.
type Prompt struct {
	scanner *bufio.Scanner
	printer *Printer
}

func NewPrompt(in io.Reader, printer *Printer) *Prompt {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanLines)
	return &Prompt{
		scanner: scanner,
		printer: printer,
	}
}

func (p *Prompt) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Choose lists the options of the enumeration and reads until an answer can be resolved.
// The canonical option name is returned.
func (p *Prompt) Choose(question string, enumeration filter.Enumeration) (string, error) {
	p.printer.Println(question)
	p.printer.Println("(Enter the number that corresponds with your choice)")
	p.printer.Choices(enumeration.Names())

	for {
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		choice, err := filter.Resolve(answer, enumeration)
		if errors.Is(err, dataErrors.ErrInvalidSelection) {
			log.Debugf("[explorer][method: Choose][status: ERROR] %s", err)
			p.printer.Println(enumeration.InvalidMessage())
			continue
		}
		if err != nil {
			return "", err
		}

		log.Debugf("[explorer][method: Choose][status: OK] %s selected: %s", enumeration.Name(), choice)
		return choice, nil
	}
}

// Confirm returns true if the answer is yes or y
func (p *Prompt) Confirm(question string) (bool, error) {
	p.printer.Println(question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return utils.IsAffirmative(answer), nil
}
