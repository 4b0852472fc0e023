// internal/cli/menu.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"atombank/internal/repository"
	"atombank/internal/util"
)

// errAbort signals that the current menu operation should be abandoned after
// bad numeric input; it never leaves the menu loop.
var errAbort = errors.New("operation aborted")

// Menu is the interactive command loop of the bank. It reads options and
// parameters from in, dispatches to the two repositories and prints results
// to out. Domain failures are reported to the user, never fatal.
type Menu struct {
	accounts    repository.AccountRepository
	investments repository.InvestmentRepository
	bankName    string
	in          *bufio.Scanner
	out         io.Writer
	logger      *slog.Logger
}

// NewMenu creates a menu bound to the given repositories and streams.
func NewMenu(
	accounts repository.AccountRepository,
	investments repository.InvestmentRepository,
	bankName string,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Menu {
	return &Menu{
		accounts:    accounts,
		investments: investments,
		bankName:    bankName,
		in:          bufio.NewScanner(in),
		out:         out,
		logger:      logger,
	}
}

// Run executes the menu loop until the user picks "Sair" or input ends.
func (m *Menu) Run() {
	for {
		m.printBanner()
		option, err := m.readInt("Digite a opção desejada: ")
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(m.out, "\nOpção inválida. Por favor, digite um número.")
			continue
		}

		switch option {
		case 1:
			m.createAccount()
		case 2:
			m.createInvestment()
		case 3:
			m.openInvestmentWallet()
		case 4:
			m.deposit()
		case 5:
			m.withdraw()
		case 6:
			m.transfer()
		case 7:
			m.invest()
		case 8:
			m.redeem()
		case 9:
			for _, account := range m.accounts.List() {
				fmt.Fprintln(m.out, account)
			}
		case 10:
			fmt.Fprintln(m.out, "\n--- Investimentos Disponíveis ---")
			for _, investment := range m.investments.List() {
				fmt.Fprintln(m.out, investment)
			}
			fmt.Fprintln(m.out, "---------------------------------")
		case 11:
			fmt.Fprintln(m.out, "\n--- Carteiras de Investimento ---")
			for _, wallet := range m.investments.ListWallets() {
				fmt.Fprintln(m.out, wallet)
			}
			fmt.Fprintln(m.out, "---------------------------------")
		case 12:
			m.investments.AccrueInterest()
			fmt.Fprintln(m.out, "\nInvestimentos atualizados com sucesso!")
		case 13:
			m.history()
		case 14:
			return
		default:
			fmt.Fprintln(m.out, "\nOpção inválida, tente novamente.")
		}
	}
}

func (m *Menu) printBanner() {
	fmt.Fprintln(m.out, "\n====================================")
	fmt.Fprintf(m.out, "Olá, seja bem-vindo(a) ao %s!\n", m.bankName)
	fmt.Fprintln(m.out, "====================================")
	fmt.Fprintln(m.out, "1  - Criar conta")
	fmt.Fprintln(m.out, "2  - Criar investimento")
	fmt.Fprintln(m.out, "3  - Iniciar investimento (Carteira)")
	fmt.Fprintln(m.out, "4  - Depositar")
	fmt.Fprintln(m.out, "5  - Sacar")
	fmt.Fprintln(m.out, "6  - Transferir")
	fmt.Fprintln(m.out, "7  - Investir (Aportar)")
	fmt.Fprintln(m.out, "8  - Sacar investimentos (Resgate)")
	fmt.Fprintln(m.out, "9  - Listar contas")
	fmt.Fprintln(m.out, "10 - Listar investimentos disponíveis")
	fmt.Fprintln(m.out, "11 - Listar carteiras com investimentos")
	fmt.Fprintln(m.out, "12 - Atualizar investimentos (Rentabilidade)")
	fmt.Fprintln(m.out, "13 - Histórico de transações")
	fmt.Fprintln(m.out, "14 - Sair")
	fmt.Fprintln(m.out, "====================================")
}

// readLine prompts and returns one trimmed input line; io.EOF when the input
// stream ends.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// readInt prompts for a whole number. Non-numeric input yields a non-EOF
// error so the caller can re-prompt or abandon the operation.
func (m *Menu) readInt(prompt string) (int64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, errAbort
	}
	return value, nil
}

// readAmount is readInt with the standard complaint for bad values.
func (m *Menu) readAmount(prompt string) (int64, bool) {
	amount, err := m.readInt(prompt)
	if err != nil {
		fmt.Fprintln(m.out, "\nValor inválido. Por favor, digite um número.")
		return 0, false
	}
	return amount, true
}

func (m *Menu) createAccount() {
	line, err := m.readLine("Digite as chaves pix (separadas ';'): ")
	if err != nil {
		return
	}
	var pixKeys []string
	for _, key := range strings.Split(line, ";") {
		pixKeys = append(pixKeys, strings.TrimSpace(key))
	}
	amount, ok := m.readAmount("Digite o valor inicial do depósito: ")
	if !ok {
		return
	}
	wallet, err := m.accounts.Create(pixKeys, amount)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Conta criada com sucesso:", wallet)
}

func (m *Menu) createInvestment() {
	taxRate, ok := m.readAmount("Digite a taxa do investimento (somente o número inteiro): ")
	if !ok {
		return
	}
	initialFunds, ok := m.readAmount("Digite o valor inicial do depósito: ")
	if !ok {
		return
	}
	investment, err := m.investments.Create(taxRate, initialFunds)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Investimento criado com sucesso:", investment)
}

func (m *Menu) openInvestmentWallet() {
	pix, err := m.readLine("Informe a chave pix da conta: ")
	if err != nil {
		return
	}
	investmentID, ok := m.readAmount("Informe o ID do investimento: ")
	if !ok {
		return
	}
	account, err := m.accounts.FindByPix(pix)
	if err != nil {
		m.reportError(err)
		return
	}
	wallet, err := m.investments.InitInvestment(account, investmentID)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Carteira de investimento criada:", wallet)
}

func (m *Menu) deposit() {
	pix, err := m.readLine("Digite a chave pix da conta: ")
	if err != nil {
		return
	}
	amount, ok := m.readAmount("Digite o valor do depósito: ")
	if !ok {
		return
	}
	if err := m.accounts.Deposit(pix, amount); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Depósito de %s realizado com sucesso.\n", FormatBRL(amount))
}

func (m *Menu) withdraw() {
	pix, err := m.readLine("Digite a chave pix da conta: ")
	if err != nil {
		return
	}
	amount, ok := m.readAmount("Digite o valor do saque: ")
	if !ok {
		return
	}
	if err := m.accounts.Withdraw(pix, amount); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Saque de %s realizado com sucesso.\n", FormatBRL(amount))
}

func (m *Menu) transfer() {
	source, err := m.readLine("Digite a chave pix da conta de origem: ")
	if err != nil {
		return
	}
	target, err := m.readLine("Digite a chave pix da conta de destino: ")
	if err != nil {
		return
	}
	amount, ok := m.readAmount("Digite o valor da transferência: ")
	if !ok {
		return
	}
	if err := m.accounts.Transfer(source, target, amount); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Transferência de %s realizada com sucesso.\n", FormatBRL(amount))
}

func (m *Menu) invest() {
	pix, err := m.readLine("Digite a chave pix da conta para investimento: ")
	if err != nil {
		return
	}
	amount, ok := m.readAmount("Digite o valor investido (aporte): ")
	if !ok {
		return
	}
	if err := m.investments.Deposit(pix, amount); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Aporte de %s realizado com sucesso.\n", FormatBRL(amount))
}

func (m *Menu) redeem() {
	pix, err := m.readLine("Digite a chave pix da conta para resgate do investimento: ")
	if err != nil {
		return
	}
	amount, ok := m.readAmount("Digite o valor do resgate: ")
	if !ok {
		return
	}
	if err := m.investments.Withdraw(pix, amount); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Resgate de %s realizado com sucesso.\n", FormatBRL(amount))
}

func (m *Menu) history() {
	pix, err := m.readLine("Informe a chave Pix: ")
	if err != nil {
		return
	}
	groups, err := m.accounts.History(pix)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(groups) == 0 {
		fmt.Fprintln(m.out, "Nenhuma transação encontrada para a chave Pix:", pix)
		return
	}
	for _, group := range groups {
		fmt.Fprintln(m.out, group.Timestamp.Format(time.RFC3339))
		for _, entry := range group.Entries {
			fmt.Fprintln(m.out, entry.Audit.TransactionID)
			fmt.Fprintln(m.out, entry.Audit.Description)
			fmt.Fprintln(m.out, FormatBRL(entry.Amount))
		}
	}
}

// reportError translates a domain failure into the user-facing message. Every
// repository error is an expected business outcome, so nothing here is fatal;
// anything unrecognized is still shown and logged for diagnosis.
func (m *Menu) reportError(err error) {
	message := err.Error()
	switch {
	case util.IsError(err, util.ErrAccountNotFound):
		message = "A conta informada não foi encontrada."
	case util.IsError(err, util.ErrInvestmentNotFound):
		message = "O investimento informado não foi encontrado."
	case util.IsError(err, util.ErrWalletNotFound):
		message = "Carteira de investimento não encontrada."
	case util.IsError(err, util.ErrAccountWithInvestment):
		message = "A conta já possui um investimento ativo."
	case util.IsError(err, util.ErrInsufficientFunds):
		message = "Sua conta não possui saldo suficiente para realizar a transação."
	case util.IsError(err, util.ErrSameWallet):
		message = "As contas de origem e destino são a mesma."
	case util.IsError(err, util.ErrInvalidAmount):
		message = "O valor informado não pode ser negativo."
	case util.IsError(err, util.ErrInvalidPixKeys):
		message = "Informe ao menos uma chave pix válida."
	case util.IsError(err, util.ErrPixKeyInUse):
		message = "Uma das chaves pix já está em uso."
	default:
		m.logger.Error("unexpected ledger error", "error", err)
	}
	fmt.Fprintln(m.out, "ERRO:", message)
}
