// Package i18n holds every user-facing string of the registry menu and renders
// them through golang.org/x/text/message for the configured locale.
package i18n

// Message keys. Numbers are passed preformatted so the locale never groups digits.
const (
	MenuBanner  = "menu.banner"
	MenuOptions = "menu.options"
	MenuPrompt  = "menu.prompt"
	MenuInvalid = "menu.invalid"
	Goodbye     = "menu.goodbye"

	PromptFullName  = "register.prompt.full_name"
	PromptUsername  = "register.prompt.username"
	PromptSex       = "register.prompt.sex"
	PromptAge       = "register.prompt.age"
	InvalidIdentity = "register.invalid_identity"
	FullNameTaken   = "register.full_name_taken"
	UsernameTaken   = "register.username_taken"
	InvalidSex      = "register.invalid_sex"
	InvalidAge      = "register.invalid_age"
	RegisterSuccess = "register.success"
	LoginPrompt     = "login.prompt"
	LoginSuccess    = "login.success"
	ListEmpty       = "list.empty"
	ListHeader      = "list.header"
	ListEntry       = "list.entry"
	DeletePrompt    = "delete.prompt"
	DeleteSuccess   = "delete.success"
	UserNotFound    = "user.not_found"
	OperationFailed = "operation.failed"
)

var ptBR = map[string]string{
	MenuBanner:  "\n=================================\n=== 💻 Sistema de Usuários 💻 ===\n=================================\n\n",
	MenuOptions: "1 - Cadastrar usuário\n2 - Fazer login\n3 - Listar usuários\n4 - Deletar usuário\n0 - Sair\n",
	MenuPrompt:  "\nEscolha uma opção: ",
	MenuInvalid: "\n❌ Opção inválida!\n",
	Goodbye:     "\n👋 Encerrando o programa...\n",

	PromptFullName:  "\nNome completo: ",
	PromptUsername:  "Nome de usuário: ",
	PromptSex:       "Sexo (M/F): ",
	PromptAge:       "Idade: ",
	InvalidIdentity: "\n❌ Erro! Nome completo pode conter espaços mas o nome de usuário não.\n",
	FullNameTaken:   "\n❌ Já existe uma conta com esse Nome completo!\n",
	UsernameTaken:   "\n❌ Nome de usuário já existe!\n",
	InvalidSex:      "\n❌ Sexo inválido! Digite apenas M ou F.\n",
	InvalidAge:      "\n❌ Idade inválida! Digite apenas números inteiros maiores que 9.\n",
	RegisterSuccess: "\n✅ Usuário cadastrado com sucesso!\n",
	LoginPrompt:     "Nome de usuário: ",
	LoginSuccess:    "\n✅ Login realizado com sucesso! Bem-vindo, %s!\n",
	ListEmpty:       "\nNenhum usuário cadastrado.\n",
	ListHeader:      "\n===================================\n=== ⭐ Usuários cadastrados ⭐ ====\n===================================\n\n",
	ListEntry:       "%s. Nome completo: %s\n   Nome de usuário: %s\n   Sexo: %s | Idade: %s\n\n",
	DeletePrompt:    "\nDigite o nome de usuário que deseja deletar: ",
	DeleteSuccess:   "\n✅ Usuário %s deletado com sucesso!\n",
	UserNotFound:    "\n❌ Usuário não encontrado!\n",
	OperationFailed: "\n❌ Não foi possível concluir a operação.\n",
}

var enUS = map[string]string{
	MenuBanner:  "\n=================================\n====== 💻 User Registry 💻 ======\n=================================\n\n",
	MenuOptions: "1 - Register user\n2 - Log in\n3 - List users\n4 - Delete user\n0 - Exit\n",
	MenuPrompt:  "\nChoose an option: ",
	MenuInvalid: "\n❌ Invalid option!\n",
	Goodbye:     "\n👋 Exiting...\n",

	PromptFullName:  "\nFull name: ",
	PromptUsername:  "Username: ",
	PromptSex:       "Sex (M/F): ",
	PromptAge:       "Age: ",
	InvalidIdentity: "\n❌ Error! The full name may contain spaces but the username may not.\n",
	FullNameTaken:   "\n❌ An account with this full name already exists!\n",
	UsernameTaken:   "\n❌ Username already exists!\n",
	InvalidSex:      "\n❌ Invalid sex! Enter only M or F.\n",
	InvalidAge:      "\n❌ Invalid age! Enter only whole numbers greater than 9.\n",
	RegisterSuccess: "\n✅ User registered successfully!\n",
	LoginPrompt:     "Username: ",
	LoginSuccess:    "\n✅ Logged in successfully! Welcome, %s!\n",
	ListEmpty:       "\nNo users registered.\n",
	ListHeader:      "\n===================================\n====== ⭐ Registered users ⭐ ======\n===================================\n\n",
	ListEntry:       "%s. Full name: %s\n   Username: %s\n   Sex: %s | Age: %s\n\n",
	DeletePrompt:    "\nEnter the username to delete: ",
	DeleteSuccess:   "\n✅ User %s deleted successfully!\n",
	UserNotFound:    "\n❌ User not found!\n",
	OperationFailed: "\n❌ The operation could not be completed.\n",
}
