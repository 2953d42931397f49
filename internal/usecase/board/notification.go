package board

// NotificationKind tells how a notification is rendered.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a user-visible message queued by a board operation.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

func success(title, description string) Notification {
	return Notification{Kind: NotificationSuccess, Title: title, Description: description}
}

func failure(description string) Notification {
	return Notification{Kind: NotificationError, Title: "Erro", Description: description}
}

var (
	notifyLoadFailed   = failure("Ocorreu um erro ao carregar os anúncios.")
	notifySaveFailed   = failure("Ocorreu um erro ao salvar o anúncio. Tente novamente.")
	notifyDeleteFailed = failure("Ocorreu um erro ao excluir o anúncio.")
	notifyToggleFailed = failure("Ocorreu um erro ao alterar o status do anúncio.")
	notifyInvalidForm  = Notification{
		Kind:        NotificationError,
		Title:       "Erro de validação",
		Description: "Por favor, preencha todos os campos obrigatórios.",
	}

	notifyCreated = success("Anúncio criado", "O anúncio foi criado com sucesso!")
	notifyUpdated = success("Anúncio atualizado", "O anúncio foi atualizado com sucesso!")
	notifyDeleted = success("Anúncio excluído", "O anúncio foi excluído com sucesso!")
)

func notifyToggled(status string) Notification {
	return success("Status atualizado", "Anúncio "+status+" com sucesso!")
}
