package client

const (
	profileQuery = `query GetProfile {
  obtenerPerfil {
    id
    nombre
    email
    username
    ultimoAcceso
  }
}`

	loginMutation = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    token
    usuario {
      id
      nombre
      email
      username
      ultimoAcceso
    }
  }
}`

	registerMutation = `mutation Register($nombre: String!, $email: String!, $password: String!, $username: String!) {
  registrarUsuario(nombre: $nombre, email: $email, password: $password, username: $username)
}`
)
